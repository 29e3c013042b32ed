/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  extract.go - Implementa l'operació EXTRACT. Escriu els bytes crus
 *               de les parts indicades en l'eixida estàndard.
 *
 */

package ops

import (
  "errors"
  "fmt"
  "io"
  "os"

  "github.com/adriagipas/sunxifw/imgs"
  "github.com/adriagipas/sunxifw/utils"
)


/************/
/* OPERACIÓ */
/************/

const EXTRACT_BUF_SIZE = 4096


// Copia tot el contingut de la part en out.
func extract_part(f utils.FileReader, out io.Writer, buf []byte) error {

  nbytes,err := f.Read ( buf )
  if err != nil { return err }
  for ; nbytes > 0; {
    n,err := out.Write ( buf[:nbytes] )
    if err != nil { return err }
    if n != nbytes {
      return errors.New ( "Unexpected error while writing part content" )
    }
    nbytes,err= f.Read ( buf )
    if err != nil { return err }
  }

  return nil

} // end extract_part

func Extract ( args *utils.Args ) error {

  // Comprova que hi han parts
  if len(args.OpArgs) == 0 {
    return errors.New ( "no parts provided to extract command" )
  }

  // Buffer
  var mem [EXTRACT_BUF_SIZE]byte
  buf := mem[:]

  // Processa args
  for _,arg := range args.OpArgs {

    // Obté la referència a la part
    ref,err := args.GetPartRef ( arg )
    if err != nil { return err }

    // Crea imatge i busca la part
    img,err := imgs.NewImage ( ref.FileName )
    if err != nil { return err }
    parts,err := img.GetParts ()
    if err != nil { return err }
    ind := -1
    for i := 0; i < len(parts); i++ {
      if parts[i].Name == ref.Part {
        ind= i
        break
      }
    }
    if ind == -1 {
      return fmt.Errorf ( "Part not found: %s", ref.Ref )
    }

    // Obri la part
    f,err := imgs.OpenPart ( ref.FileName, parts[ind] )
    if err != nil { return err }

    // Llig i imprimeix
    if err := extract_part ( f, os.Stdout, buf ); err != nil {
      f.Close ()
      return err
    }

    // Tanca el fitxer
    f.Close ()

  }

  return nil

} // end Extract
